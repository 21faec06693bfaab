package services

import "github.com/Danik911/dublin-accommodation-bot/models"

// templates holds the five outreach templates keyed by message type. Tokens
// are literal `{name}` markers filled by the Composer; the token set here
// must stay inside the replacer's slot set so substitution stays total.
var templates = map[models.MessageType]string{
	models.MsgFreeAccommodation: `Hi {hostName}!

I hope you're doing well! I came across your listing for {propertyType} in {location} and I'm very interested in discussing a potential arrangement.

I'm a {userAge}-year-old {userOccupation} from abroad, currently studying {userCourse} at {userCollege}. I also work part-time at the {userWorkplace}. I'm looking for accommodation in the Dublin area for a period of {accommodationPeriod}.

A bit about me:
- Responsible student with a structured daily routine (early riser: {userSchedule})
- Employed part-time, so I can contribute to household expenses if needed
- Non-smoker, don't drink, and no pets
- Active lifestyle ({userActivities}) - I take good care of myself and my living space
- Very clean and respectful of shared spaces

{commuteBenefit}

I'd be happy to discuss how I could contribute to your household through {suggestedContribution} or other arrangements that work for both of us.

I'm available for a call or meeting at your convenience. Thank you for considering my request!

Best regards`,

	models.MsgWorkExchange: `Hi {hostName}!

I'm very interested in your work exchange opportunity for {propertyType} in {location}. This sounds like exactly what I'm looking for!

I'm a {userAge}-year-old {userOccupation} studying {userCourse} at {userCollege}, and I work part-time at the {userWorkplace}. I'm seeking accommodation for {accommodationPeriod} and would love to contribute through work exchange.

What I can offer:
- Strong work ethic and reliability
- Experience with {suggestedContribution}
- Flexible schedule that can accommodate your needs
- Excellent attention to detail and cleanliness
- Non-smoker, no drinking, no pets - very responsible tenant

{commuteBenefit}

My active lifestyle ({userActivities}) keeps me healthy and energetic, and my structured routine ({userSchedule}) means I'm always available when needed.

I'd love to discuss how my skills and availability align with your needs. When would be a good time for a call or meeting?

Looking forward to hearing from you!

Best regards`,

	models.MsgHouseSitting: `Hi {hostName}!

I'm very interested in your house sitting opportunity in {location}. As a responsible {userAge}-year-old {userOccupation}, I believe I'd be an excellent fit for taking care of your property.

About me:
- Currently studying {userCourse} at {userCollege}
- Work part-time at {userWorkplace} - reliable and trustworthy
- Experienced with property care and maintenance
- Great with plants, mail collection, and general upkeep
- Non-smoker, don't drink, no pets - very responsible

{commuteBenefit}

My structured daily routine ({userSchedule}) means I'll be around regularly to ensure your property is well-maintained and secure. I'm also active with {userActivities}, so I'm always alert and aware of my surroundings.

I'm available for {accommodationPeriod} and would be happy to provide references or meet in person to discuss your specific requirements.

Thank you for considering me for this opportunity!

Best regards`,

	models.MsgCaretaker: `Hi {hostName}!

I'm very interested in your caretaker position in {location}. This opportunity aligns perfectly with my skills and accommodation needs.

Background:
- {userAge}-year-old {userOccupation} studying {userCourse} at {userCollege}
- Currently employed part-time at {userWorkplace}
- Experienced with {suggestedContribution}
- Reliable and detail-oriented with property maintenance

{commuteBenefit}

What I bring:
- Structured schedule ({userSchedule}) ensuring consistent availability
- Active lifestyle ({userActivities}) - physically capable and energetic
- Excellent attention to cleanliness and organization
- Non-smoker, no drinking, no pets - very responsible
- Security-conscious and trustworthy

I'm seeking accommodation for {accommodationPeriod} and would be dedicated to maintaining your property to the highest standards.

I'd love to discuss your specific requirements and how I can contribute. When would be convenient for a call or meeting?

Thank you for your consideration!

Best regards`,

	models.MsgLowCost: `Hi {hostName}!

I hope you're well! I'm interested in your {propertyType} in {location} and would love to learn more about it.

I'm a {userAge}-year-old {userOccupation} studying {userCourse} at {userCollege}. I also work part-time at the {userWorkplace} and am looking for accommodation for {accommodationPeriod}.

About me:
- Responsible student with excellent references
- Employed part-time with stable income
- Non-smoker, don't drink, no pets
- Very clean and respectful of shared spaces
- Structured routine ({userSchedule}) - quiet and considerate

{commuteBenefit}

I'm active with {userActivities} and maintain a healthy, organized lifestyle. I believe in being a positive addition to any household.

Would you be available for a viewing or call to discuss the details? I'm very interested and can provide references if needed.

Thank you for your time!

Best regards`,
}
